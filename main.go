/*
Copyright © 2023 NAME HERE <EMAIL ADDRESS>
*/
package main

import "pathext/cmd"

func main() {
	cmd.Execute()
}
