package main

import (
	"flag"
	"log"
	"os"

	"github.com/tccnbinhduong/QuanLyDaoTao/app/config"
	"github.com/tccnbinhduong/QuanLyDaoTao/app/store"
)

func main() {
	force := flag.Bool("force", false, "overwrite an existing data file")
	flag.Parse()

	log.Println("Seeding default data file...")

	config.Init()
	path := config.AppConfig.DataFile

	if _, err := os.Stat(path); err == nil && !*force {
		log.Fatalf("Data file %s already exists, re-run with -force to overwrite", path)
	}

	s, err := store.Open(path)
	if err != nil {
		log.Fatal("Failed to open data store:", err)
	}
	if err := s.Reset(); err != nil {
		log.Fatal("Failed to write seed data:", err)
	}

	log.Printf("Seed data written to %s", path)
}
