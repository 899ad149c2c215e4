package usecase

import (
	"strings"
	"testing"

	"isp_backoffice/internal/domain/entities"
)

func TestValidateFields(t *testing.T) {
	cases := []struct {
		name    string
		rule    fieldRule
		wantErr string
	}{
		{name: "ten digit phone", rule: fieldRule{"phone1", "5512345678", "required,phone10"}},
		{name: "short phone", rule: fieldRule{"phone1", "55123", "required,phone10"}, wantErr: "phone1"},
		{name: "signed phone", rule: fieldRule{"phone2", "+551234567", "omitempty,phone10"}, wantErr: "phone2"},
		{name: "empty optional phone", rule: fieldRule{"phone2", "", "omitempty,phone10"}},
		{name: "missing required", rule: fieldRule{"street", "", "required"}, wantErr: "street is required"},
		{name: "dotted ipv4", rule: fieldRule{"antenna_ip", "192.168.1.20", "ipv4opt"}},
		{name: "short ipv4", rule: fieldRule{"antenna_ip", "10.0.0", "ipv4opt"}, wantErr: "antenna_ip"},
		{name: "mapped ipv6", rule: fieldRule{"antenna_ip", "::ffff:10.0.0.1", "ipv4opt"}, wantErr: "antenna_ip"},
		{name: "empty ip", rule: fieldRule{"antenna_ip", "", "ipv4opt"}},
		{name: "mac with colons", rule: fieldRule{"antenna_mac", "aa:bb:cc:dd:ee:ff", "mac12"}},
		{name: "mac with dashes", rule: fieldRule{"antenna_mac", "AA-BB-CC-DD-EE-FF", "mac12"}},
		{name: "bare mac", rule: fieldRule{"antenna_mac", "aabbccddeeff", "mac12"}},
		{name: "non hex mac", rule: fieldRule{"antenna_mac", "zz:bb:cc:dd:ee:ff", "mac12"}, wantErr: "antenna_mac"},
		{name: "eight byte mac", rule: fieldRule{"antenna_mac", "aa:bb:cc:dd:ee:ff:00:11", "mac12"}, wantErr: "antenna_mac"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateFields([]fieldRule{tc.rule})
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("expected error mentioning %q, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestValidateContact(t *testing.T) {
	c := entities.Contact{
		FirstName:       "Ana",
		LastNamePaterno: "López",
		Phone1:          "5512345678",
		Street:          "Juárez",
		ExteriorNumber:  "4",
		Neighborhood:    "Centro",
		City:            "Toluca",
	}
	if err := validateContact(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c.Phone3 = "55-1234-56"
	if err := validateContact(c); err == nil || !strings.Contains(err.Error(), "phone3") {
		t.Fatalf("expected phone3 error, got %v", err)
	}
}
