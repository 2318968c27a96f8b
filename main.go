package main

import "github.com/schmidtrico91/rico-mealtracker-main/cmd"

func main() {
	cmd.Execute()
}
