package main

import "github.com/sghaida/beanbox/cmd/beanbox/cmd"

func main() {
	cmd.Execute()
}
