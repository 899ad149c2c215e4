package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	cfg, err := fromViper(v)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "us-east-1", cfg.AWS.Region)
	assert.Equal(t, "client_billing", cfg.Tables.ClientBilling)
	assert.Equal(t, 10, cfg.Billing.DefaultBillingDay)
	assert.Equal(t, 5*time.Minute, cfg.Billing.PlanCacheTTL)
	assert.False(t, cfg.MercadoPago.Mock)
	assert.Equal(t, "INTERNET", cfg.MercadoPago.StatementDescriptor)
	assert.Equal(t, "scheduled_services", cfg.Tables.ScheduledServices)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("MERCADOPAGO_MOCK", "Yes")
	t.Setenv("MERCADOPAGO_ACCESS_TOKEN", " TEST-123 ")
	t.Setenv("CHARGES_TABLE", "charges_qa")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.True(t, cfg.MercadoPago.Mock)
	assert.True(t, cfg.MercadoPago.Sandbox())
	assert.Equal(t, "charges_qa", cfg.Tables.Charges)
}

func TestLoad_RejectsInvalidBillingDay(t *testing.T) {
	t.Setenv("DEFAULT_BILLING_DAY", "31")

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_RejectsInvalidNotificationURL(t *testing.T) {
	t.Setenv("MERCADOPAGO_NOTIFICATION_URL", "not a url")

	_, err := Load()
	require.Error(t, err)
}
