package main

import (
	"digamma/internal/appshell"
	"digamma/internal/generalapp"
)

func main() { appshell.Main(generalapp.RunContext) }
