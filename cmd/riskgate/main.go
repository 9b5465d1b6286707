// Command riskgate is a terminal client for the fraud-risk dashboard
// backends: it logs in against the identity service, keeps the session in a
// local state file, and submits documents, claims, and vendors to the
// analytical service with the bearer token attached.
package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	if os.Getenv("APP_ENV") != "production" {
		if err := godotenv.Load(); err != nil {
			log.Println("no .env file found, continuing")
		}
	}

	Execute()
}
