package shared

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"MYSQL_DSN", "MYSQL_HOST", "MYSQL_USER", "MYSQL_PASSWORD", "MYSQL_DATABASE", "MYSQL_PORT", "CACHE_TTL_SECONDS", "RATE_LIMIT_RPS"} {
		t.Setenv(k, "")
	}
	c := Load()
	if c.CacheTTL != time.Hour {
		t.Fatalf("CacheTTL = %v, want 1h", c.CacheTTL)
	}
	if c.RateRPS != 10 || c.RateBurst != 20 {
		t.Fatalf("rate = %v/%d", c.RateRPS, c.RateBurst)
	}
	want := "root:@tcp(localhost:3306)/5033_ali?parseTime=true&charset=utf8mb4,utf8&loc=UTC"
	if c.MySQLDSN != want {
		t.Fatalf("dsn = %q", c.MySQLDSN)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("MYSQL_DSN", "")
	t.Setenv("MYSQL_HOST", "db")
	t.Setenv("MYSQL_PASSWORD", "secret")
	t.Setenv("CACHE_TTL_SECONDS", "60")
	t.Setenv("WARM_ON_START", "true")
	c := Load()
	if c.CacheTTL != time.Minute || !c.WarmOnStart {
		t.Fatalf("unexpected config: %+v", c)
	}
	if c.MySQLDSN != "root:secret@tcp(db:3306)/5033_ali?parseTime=true&charset=utf8mb4,utf8&loc=UTC" {
		t.Fatalf("dsn = %q", c.MySQLDSN)
	}
}
