package main

import "github.com/vfg2006/finance-insights-api/internal/cli"

func main() {
	cli.Execute()
}
