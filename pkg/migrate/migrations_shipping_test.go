package migrate_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cyberraf/giftyy-backend/pkg/migrate"
)

func TestShippingMigrationsContainConstraints(t *testing.T) {
	checksByGlob := map[string][]string{
		"*_create_vendors.sql": {
			"CREATE TABLE IF NOT EXISTS vendors",
			"DROP TABLE IF EXISTS vendors",
		},
		"*_create_shipping_zones.sql": {
			"CREATE TABLE IF NOT EXISTS shipping_zones",
			"FOREIGN KEY (vendor_id) REFERENCES vendors(id) ON DELETE CASCADE",
			"is_rest_of_world BOOLEAN NOT NULL DEFAULT FALSE",
			"DROP TABLE IF EXISTS shipping_zones",
		},
		"*_create_shipping_rates.sql": {
			"CREATE TABLE IF NOT EXISTS shipping_rates",
			"FOREIGN KEY (zone_id) REFERENCES shipping_zones(id) ON DELETE CASCADE",
			"CHECK (min_subtotal_cents IS NULL OR min_subtotal_cents >= 0)",
			"DROP TABLE IF EXISTS shipping_rates",
		},
	}

	for glob, checks := range checksByGlob {
		matches, err := filepath.Glob(filepath.Join("migrations", glob))
		if err != nil {
			t.Fatalf("glob migrations: %v", err)
		}
		if len(matches) == 0 {
			t.Fatalf("no migration file found for %s", glob)
		}

		data, err := os.ReadFile(matches[0])
		if err != nil {
			t.Fatalf("read migration file: %v", err)
		}
		content := string(data)

		for _, sub := range checks {
			if !strings.Contains(content, sub) {
				t.Errorf("%s: missing expected statement %q", matches[0], sub)
			}
		}
	}
}

func TestMigrationsDirValidates(t *testing.T) {
	if err := migrate.ValidateDir("migrations"); err != nil {
		t.Fatalf("migrations dir invalid: %v", err)
	}
}
