package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/nimbusworks/intranet_portal_app/internal/adapters/sharepoint"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	// Graph / SharePoint connection
	TenantID     string
	ClientID     string
	ClientSecret string
	SiteHostname string
	SitePath     string
	GraphBaseURL string

	// Backing list names, overridable per environment so a staging site
	// can host differently named lists.
	Lists sharepoint.ListNames

	// Token settings
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Bootstrap admin for the local login endpoint
	AdminEmail        string
	AdminName         string
	AdminPasswordHash string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("GRAPH_BASE_URL", "https://graph.microsoft.com/v1.0")
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "intranet-portal-backend")
	viper.SetDefault("ADMIN_EMAIL", "admin@nimbusworks.example")
	viper.SetDefault("ADMIN_NAME", "Portal Admin")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.TenantID = viper.GetString("SP_TENANT_ID")
	cfg.ClientID = viper.GetString("SP_CLIENT_ID")
	cfg.ClientSecret = viper.GetString("SP_CLIENT_SECRET")
	cfg.SiteHostname = viper.GetString("SP_SITE_HOSTNAME")
	cfg.SitePath = viper.GetString("SP_SITE_PATH")
	cfg.GraphBaseURL = viper.GetString("GRAPH_BASE_URL")
	if cfg.TenantID == "" || cfg.ClientID == "" || cfg.ClientSecret == "" {
		log.Println("Warning: SP_TENANT_ID / SP_CLIENT_ID / SP_CLIENT_SECRET not fully set. SharePoint access will not function.")
	}
	if cfg.SiteHostname == "" || cfg.SitePath == "" {
		log.Println("Warning: SP_SITE_HOSTNAME / SP_SITE_PATH not set. SharePoint access will not function.")
	}

	cfg.Lists = sharepoint.DefaultListNames()
	overrideList := func(env string, target *string) {
		if v := viper.GetString(env); v != "" {
			*target = v
		}
	}
	overrideList("LIST_ASSETS", &cfg.Lists.Assets)
	overrideList("LIST_PAYMENTS", &cfg.Lists.Payments)
	overrideList("LIST_EMPLOYEES", &cfg.Lists.Employees)
	overrideList("LIST_LEAVES", &cfg.Lists.Leaves)
	overrideList("LIST_KRAS", &cfg.Lists.KRAs)
	overrideList("LIST_KPIS", &cfg.Lists.KPIs)
	overrideList("LIST_OBJECTIVES", &cfg.Lists.Objectives)
	overrideList("LIST_PROJECTS", &cfg.Lists.Projects)
	overrideList("LIST_TASKS", &cfg.Lists.Tasks)
	overrideList("LIST_RISKS", &cfg.Lists.Risks)
	overrideList("LIST_EVENTS", &cfg.Lists.Events)

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = time.Hour
		if jwtExpiryStr != "" {
			log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
		}
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.AdminEmail = viper.GetString("ADMIN_EMAIL")
	cfg.AdminName = viper.GetString("ADMIN_NAME")
	cfg.AdminPasswordHash = viper.GetString("ADMIN_PASSWORD_HASH")
	if cfg.AdminPasswordHash == "" {
		log.Println("Warning: ADMIN_PASSWORD_HASH not set. The local login endpoint will reject all attempts.")
	}

	return cfg, nil
}
