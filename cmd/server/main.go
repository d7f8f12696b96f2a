package main

import (
	"encoding/hex"
	"flag"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/sessions"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/github"

	"nyiyui.ca/flight-delay/config"
	"nyiyui.ca/flight-delay/database"
	"nyiyui.ca/flight-delay/predict"
	"nyiyui.ca/flight-delay/server"
	"nyiyui.ca/flight-delay/storage"
)

func getenvNonEmpty(key string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Fatalf("%s is not set", key)
	}
	return value
}

// oauthConfigFromEnv returns nil when no OAuth client is configured.
func oauthConfigFromEnv() *oauth2.Config {
	clientID := os.Getenv("FLIGHT_DELAY_OAUTH_CLIENT_ID")
	if clientID == "" {
		return nil
	}
	return &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: getenvNonEmpty("FLIGHT_DELAY_OAUTH_CLIENT_SECRET"),
		Scopes:       []string{},
		Endpoint:     github.Endpoint,
		RedirectURL:  getenvNonEmpty("FLIGHT_DELAY_OAUTH_REDIRECT_URI"),
	}
}

func main() {
	var configPath string
	var dbPath string
	var bindAddress string
	var predictURL string
	flag.StringVar(&configPath, "config", "", "path to config file")
	flag.StringVar(&bindAddress, "bind", "", "bind address (overrides config)")
	flag.StringVar(&dbPath, "db-path", "", "path to database (overrides config)")
	flag.StringVar(&predictURL, "predict-url", "", "prediction service endpoint (overrides config)")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatal(err)
	}
	if bindAddress != "" {
		cfg.Bind = bindAddress
	}
	if dbPath != "" {
		cfg.DBPath = dbPath
	}
	if predictURL != "" {
		cfg.PredictURL = predictURL
	}

	log.Printf("opening database...")
	db, err := database.Open(cfg.DBPath)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("migrating database...")
	err = database.Migrate(db.DB)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("database migrated.")
	st := storage.New(db)

	authKey, err := hex.DecodeString(getenvNonEmpty("FLIGHT_DELAY_STORE_AUTH_KEY"))
	if err != nil {
		log.Fatal(err)
	}
	store := sessions.NewFilesystemStore("", authKey)

	oauthConfig := oauthConfigFromEnv()
	if oauthConfig == nil {
		log.Printf("FLIGHT_DELAY_OAUTH_CLIENT_ID is not set, history views are disabled.")
	}

	client := predict.NewClient(cfg.PredictURL, nil)
	sub := predict.NewSubmitter(client, cfg.Codes())
	s, err := server.New(oauthConfig, store, cfg.AdminUser, st, sub, cfg.Disclaimer)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("forwarding predictions to %s", client.Endpoint())
	log.Printf("listening on %s...", cfg.Bind)
	log.Fatal(http.ListenAndServe(cfg.Bind, s))
}
