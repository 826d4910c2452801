// Command hashpasscode prints the bcrypt hash to set as PASSCODE_HASH.
//
//	go run ./cmd/hashpasscode 2468
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/mmynk/recipelist/internal/auth"
	"github.com/mmynk/recipelist/pkg/logging"
)

func main() {
	logging.Setup()

	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: hashpasscode <passcode>")
		os.Exit(2)
	}

	hash, err := auth.HashPasscode(os.Args[1])
	if err != nil {
		slog.Error("Failed to hash passcode", "error", err)
		os.Exit(1)
	}
	fmt.Println(hash)
}
