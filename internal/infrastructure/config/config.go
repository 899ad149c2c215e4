package config

import (
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config is the runtime configuration, read from the environment (and .env
// through godotenv/autoload in main).
type Config struct {
	Port     int    `validate:"required,min=1,max=65535"`
	LogLevel string `validate:"required,oneof=debug info warn error"`

	AWS         AWSConfig
	Tables      TablesConfig
	MercadoPago MercadoPagoConfig
	Billing     BillingConfig
}

type AWSConfig struct {
	Region           string `validate:"required"`
	AccessKeyID      string
	SecretAccessKey  string
	DynamoDBEndpoint string
}

type TablesConfig struct {
	Prospects       string `validate:"required"`
	ProspectChanges string `validate:"required"`
	Clients         string `validate:"required"`
	ClientBilling   string `validate:"required"`
	Equipment       string `validate:"required"`
	Charges         string `validate:"required"`
	Payments        string `validate:"required"`
	ServicePlans    string `validate:"required"`

	ScheduledServices string `validate:"required"`
}

type MercadoPagoConfig struct {
	AccessToken     string
	PublicKey       string
	Mock            bool
	TestPayerEmail  string
	TestPayerUserID string
	// StatementDescriptor is what clients see on their card statement.
	StatementDescriptor string
	NotificationURL     string `validate:"omitempty,url"`
}

// Sandbox reports whether the access token belongs to a Mercado Pago test account.
func (c MercadoPagoConfig) Sandbox() bool {
	return strings.HasPrefix(strings.TrimSpace(c.AccessToken), "TEST-")
}

type BillingConfig struct {
	DefaultBillingDay int           `validate:"min=1,max=28"`
	ChargeWorkers     int           `validate:"min=1"`
	BalanceRetries    uint64        `validate:"min=1"`
	PlanCacheTTL      time.Duration `validate:"min=0"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", 8080)
	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("AWS_REGION", "us-east-1")
	v.SetDefault("AWS_ACCESS_KEY_ID", "local")
	v.SetDefault("AWS_SECRET_ACCESS_KEY", "local")
	v.SetDefault("DYNAMODB_ENDPOINT", "")

	v.SetDefault("PROSPECTS_TABLE", "prospects")
	v.SetDefault("PROSPECT_CHANGES_TABLE", "prospect_change_history")
	v.SetDefault("CLIENTS_TABLE", "clients")
	v.SetDefault("CLIENT_BILLING_TABLE", "client_billing")
	v.SetDefault("EQUIPMENT_TABLE", "equipment")
	v.SetDefault("CHARGES_TABLE", "client_charges")
	v.SetDefault("PAYMENTS_TABLE", "payments")
	v.SetDefault("SERVICE_PLANS_TABLE", "service_plans")
	v.SetDefault("SCHEDULED_SERVICES_TABLE", "scheduled_services")

	v.SetDefault("MERCADOPAGO_ACCESS_TOKEN", "")
	v.SetDefault("MERCADOPAGO_PUBLIC_KEY", "")
	v.SetDefault("PAYMENT_GATEWAY_MOCK", "")
	v.SetDefault("MERCADOPAGO_MOCK", "")
	v.SetDefault("MERCADOPAGO_TEST_PAYER_EMAIL", "")
	v.SetDefault("MERCADOPAGO_TEST_PAYER_USER_ID", "")
	v.SetDefault("MERCADOPAGO_STATEMENT_DESCRIPTOR", "INTERNET")
	v.SetDefault("MERCADOPAGO_NOTIFICATION_URL", "")

	v.SetDefault("DEFAULT_BILLING_DAY", 10)
	v.SetDefault("CHARGE_WORKERS", 8)
	v.SetDefault("BALANCE_UPDATE_RETRIES", 5)
	v.SetDefault("PLAN_CACHE_TTL", 5*time.Minute)
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)
	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Port:     v.GetInt("PORT"),
		LogLevel: strings.ToLower(v.GetString("LOG_LEVEL")),
		AWS: AWSConfig{
			Region:           v.GetString("AWS_REGION"),
			AccessKeyID:      v.GetString("AWS_ACCESS_KEY_ID"),
			SecretAccessKey:  v.GetString("AWS_SECRET_ACCESS_KEY"),
			DynamoDBEndpoint: v.GetString("DYNAMODB_ENDPOINT"),
		},
		Tables: TablesConfig{
			Prospects:       v.GetString("PROSPECTS_TABLE"),
			ProspectChanges: v.GetString("PROSPECT_CHANGES_TABLE"),
			Clients:         v.GetString("CLIENTS_TABLE"),
			ClientBilling:   v.GetString("CLIENT_BILLING_TABLE"),
			Equipment:       v.GetString("EQUIPMENT_TABLE"),
			Charges:         v.GetString("CHARGES_TABLE"),
			Payments:        v.GetString("PAYMENTS_TABLE"),
			ServicePlans:    v.GetString("SERVICE_PLANS_TABLE"),

			ScheduledServices: v.GetString("SCHEDULED_SERVICES_TABLE"),
		},
		MercadoPago: MercadoPagoConfig{
			AccessToken:     strings.TrimSpace(v.GetString("MERCADOPAGO_ACCESS_TOKEN")),
			PublicKey:       strings.TrimSpace(v.GetString("MERCADOPAGO_PUBLIC_KEY")),
			Mock:            isTruthy(v.GetString("PAYMENT_GATEWAY_MOCK")) || isTruthy(v.GetString("MERCADOPAGO_MOCK")),
			TestPayerEmail:  strings.TrimSpace(v.GetString("MERCADOPAGO_TEST_PAYER_EMAIL")),
			TestPayerUserID: strings.TrimSpace(v.GetString("MERCADOPAGO_TEST_PAYER_USER_ID")),

			StatementDescriptor: strings.TrimSpace(v.GetString("MERCADOPAGO_STATEMENT_DESCRIPTOR")),
			NotificationURL:     strings.TrimSpace(v.GetString("MERCADOPAGO_NOTIFICATION_URL")),
		},
		Billing: BillingConfig{
			DefaultBillingDay: v.GetInt("DEFAULT_BILLING_DAY"),
			ChargeWorkers:     v.GetInt("CHARGE_WORKERS"),
			BalanceRetries:    v.GetUint64("BALANCE_UPDATE_RETRIES"),
			PlanCacheTTL:      v.GetDuration("PLAN_CACHE_TTL"),
		},
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return cfg, nil
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
