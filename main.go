package main

import "github.com/lolikeketon/seller-apis/cmd"

func main() {
	cmd.Execute()
}
