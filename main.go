package main

import (
	"WebDev/cmd"
	"WebDev/internal/pkg/logger"
)

func main() {
	defer logger.Sync()

	cmd.Execute()
}
