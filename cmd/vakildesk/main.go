package main

import (
	"log"
	"net/http"
	"os"

	"github.com/urfave/cli/v2"

	"vakildesk/internal/ai"
	"vakildesk/internal/config"
	"vakildesk/internal/handlers"
	"vakildesk/internal/reminder"
	"vakildesk/internal/storage"
)

func main() {
	app := &cli.App{
		Name:  "vakildesk",
		Usage: "Practice management backend for Indian advocates.",
		Commands: []*cli.Command{
			serveCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal("Application failed with error ", err)
	}
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the HTTP API server.",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "addr", Usage: "Listen address. Overrides LISTEN_ADDR."},
			&cli.StringFlag{Name: "seed", Usage: "YAML seed file replacing the built-in mock data."},
		},
		Action: func(c *cli.Context) error {
			cfg := config.New()
			if addr := c.String("addr"); addr != "" {
				cfg.ListenAddr = addr
			}
			if seedPath := c.String("seed"); seedPath != "" {
				cfg.SeedFile = seedPath
			}
			if cfg.GeminiKey == "" {
				log.Println("GEMINI_API_KEY not set, AI drafting will fail")
			}

			seed := storage.Default()
			if cfg.SeedFile != "" {
				loaded, err := storage.Load(cfg.SeedFile)
				if err != nil {
					return err
				}
				seed = loaded
				log.Println("loaded seed data from ", cfg.SeedFile)
			}

			stores := storage.NewStores(seed)
			aiClient := ai.NewGeminiClient(cfg.GeminiKey)

			sweeper := reminder.NewSweeper(stores.Events, stores.Notifications)
			cronRunner, err := sweeper.Start(cfg.ReminderCron)
			if err != nil {
				return err
			}
			defer cronRunner.Stop()

			calendarHandler := handlers.NewCalendarHandler(stores.Events, stores.Cases, stores.Plan)
			casesHandler := handlers.NewCasesHandler(stores.Cases, stores.Events, stores.Evidence)
			searchHandler := handlers.NewSearchHandler(stores.Cases, stores.Clients, stores.Evidence)
			clientsHandler := handlers.NewClientsHandler(stores.Clients, stores.Plan)
			evidenceHandler := handlers.NewEvidenceHandler(stores.Evidence, stores.Plan)
			draftsHandler := handlers.NewDraftsHandler(aiClient, stores.Plan)
			dashboardHandler := handlers.NewDashboardHandler(stores.Cases, stores.Clients, stores.Events, stores.Notifications)
			notificationsHandler := handlers.NewNotificationsHandler(stores.Notifications)
			teamHandler := handlers.NewTeamHandler(stores.Team, stores.Plan)
			billingHandler := handlers.NewBillingHandler(stores.Plan)
			authHandler := handlers.NewAuthHandler()
			stringsHandler := handlers.NewStringsHandler()

			mux := http.NewServeMux()
			mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})
			mux.HandleFunc("/api/strings", stringsHandler.HandleStrings)
			mux.HandleFunc("/api/dashboard", dashboardHandler.HandleStats)
			mux.HandleFunc("/api/search", searchHandler.HandleSearch)
			mux.HandleFunc("/api/cases", casesHandler.HandleList)
			mux.HandleFunc("/api/cases/list", calendarHandler.HandleCaseRefs)
			mux.HandleFunc("/api/cases/", casesHandler.HandleDetail)
			mux.HandleFunc("/api/clients", clientsRouter(clientsHandler))
			mux.HandleFunc("/api/clients/select", clientsHandler.HandleSelect)
			mux.HandleFunc("/api/clients/bulk", clientsHandler.HandleBulk)
			mux.HandleFunc("/api/evidence", evidenceHandler.HandleList)
			mux.HandleFunc("/api/calendar/grid", calendarHandler.HandleGrid)
			mux.HandleFunc("/api/calendar/events", calendarHandler.HandleSaveEvent)
			mux.HandleFunc("/api/calendar/export", calendarHandler.HandleExport)
			mux.HandleFunc("/api/drafts", draftsHandler.HandleGenerate)
			mux.HandleFunc("/api/notifications", notificationsHandler.HandleList)
			mux.HandleFunc("/api/notifications/read", notificationsHandler.HandleRead)
			mux.HandleFunc("/api/team", teamHandler.HandleList)
			mux.HandleFunc("/api/team/invite", teamHandler.HandleInvite)
			mux.HandleFunc("/api/team/remove", teamHandler.HandleRemove)
			mux.HandleFunc("/api/team/access", teamHandler.HandleAccess)
			mux.HandleFunc("/api/billing", billingHandler.HandleGet)
			mux.HandleFunc("/api/billing/upgrade", billingHandler.HandleUpgrade)
			mux.HandleFunc("/api/billing/downgrade", billingHandler.HandleDowngrade)
			mux.HandleFunc("/api/auth/login", authHandler.HandleLogin)
			mux.HandleFunc("/api/auth/signup", authHandler.HandleSignup)
			mux.HandleFunc("/api/auth/forgot", authHandler.HandleForgotPassword)

			log.Println("listening on ", cfg.ListenAddr)
			if err := http.ListenAndServe(cfg.ListenAddr, mux); err != nil {
				return err
			}
			return nil
		},
	}
}

// clientsRouter splits GET (list) and POST (add) on the same path.
func clientsRouter(h *handlers.ClientsHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			h.HandleAdd(w, r)
			return
		}
		h.HandleList(w, r)
	}
}
