package main

import (
	"digamma/internal/appshell"
	"digamma/internal/riemannapp"
)

func main() { appshell.Main(riemannapp.RunContext) }
