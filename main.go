package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/YoRyan/operdate-getbus/cmd"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("load .env: %v", err)
	}
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
