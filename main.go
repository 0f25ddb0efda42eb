package main

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"inkwell/app/routes"
	"inkwell/client/api"
	"inkwell/client/session"
	"inkwell/config"
	"inkwell/logger"
	"inkwell/web"

	"github.com/dgraph-io/badger/v4"
)

const cliVersion = "1.0.0"

func main() {
	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	cmd := strings.ToLower(os.Args[1])
	switch cmd {
	case "help":
		printHelp()
	case "version":
		fmt.Printf("inkwell version %s\n", cliVersion)
	case "serve":
		serve()
	case "web":
		serveWeb()
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printHelp()
		os.Exit(1)
	}
}

func printHelp() {
	helpText := `Usage: inkwell <command>
Commands:
  help       Display this help message.
  version    Show version information.
  serve      Run the content service (users and blog posts API).
  web        Run the web frontend against a running content service.

Configuration is read from the environment or an optional config.yaml
(SERVER_ADDR, DB_PATH, JWT_SECRET, WEB_ADDR, API_BASE_URL, SESSION_FILE).
`
	fmt.Println(helpText)
}

// serve runs the JSON content service backed by Badger.
func serve() {
	cfg := config.Init()
	log := logger.New()

	opts := badger.DefaultOptions(cfg.DBPath).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		log.Error("main", "failed to open database", err)
		os.Exit(1)
	}
	defer db.Close()

	router := routes.Setup(db, cfg.JWTSecret, log)

	log.Info("main", "content service listening on "+cfg.ServerAddr)
	if err := routes.StartServer(cfg.ServerAddr, router); err != nil {
		log.Error("main", "server error", err)
		os.Exit(1)
	}
}

// serveWeb runs the browser-facing frontend. The initial load failing
// is not fatal: the page renders empty and recovers on the next
// successful refresh.
func serveWeb() {
	cfg := config.Init()
	log := logger.New()

	sessions := session.NewStore(cfg.SessionFile)
	if err := sessions.Load(); err != nil {
		log.Error("main", "failed to load session, starting anonymous", err)
	}

	client := api.New(cfg.APIBaseURL)
	if sess, ok := sessions.Current(); ok {
		client.SetToken(sess.Token)
	}

	server := web.NewServer(client, sessions, log)
	if err := server.Refresh(); err != nil {
		log.Error("main", "initial load failed", err)
	}

	log.Info("main", "web frontend listening on "+cfg.WebAddr)
	if err := http.ListenAndServe(cfg.WebAddr, server.Router()); err != nil {
		log.Error("main", "server error", err)
		os.Exit(1)
	}
}
