package main

import "github.com/ibrahimfakhry/portfolio/cmd/imgprep/cmd"

func main() {
	cmd.Execute()
}
