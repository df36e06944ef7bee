package main

import (
	"flag"
	"log"

	"github.com/IliyanIlievPH/partner-management/cmd"
)

func main() {
	shouldRunMigrations := flag.Bool("migrations", false, "run the database migrations")
	shouldRunServer := flag.Bool("server", false, "run the application server")
	flag.Parse()

	if *shouldRunMigrations {
		if err := cmd.RunMigrations(); err != nil {
			log.Fatal(err)
		}
	}
	if *shouldRunServer {
		if err := cmd.RunServer(); err != nil {
			log.Fatal(err)
		}
	}
}
