// Command token mints a development bearer token for the local API.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/DWARA-KESH/EpiCircleDemo/internal/auth"
	"github.com/DWARA-KESH/EpiCircleDemo/internal/entities"
	"github.com/joho/godotenv"
)

func main() {
	godotenv.Load()

	role := flag.String("role", "customer", "customer or partner")
	phone := flag.String("phone", "9876543210", "customer phone")
	partnerID := flag.String("partner", "partner-1", "partner id")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	actor := entities.Actor{Role: entities.Role(*role), Phone: *phone}
	if actor.Role == entities.RolePartner {
		actor = entities.Actor{Role: entities.RolePartner, PartnerID: *partnerID}
	}
	if err := actor.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	token, err := auth.Sign(os.Getenv("JWT_SECRET"), actor, *ttl)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(token)
}
