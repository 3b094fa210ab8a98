package configs

import "time"

// Session configures the session cookie. Secret signs cookie values and must
// be set; TTL bounds both the cookie and the stored session.
type Session struct {
	Secret       string        `env:"SECRET,required"`
	TTL          time.Duration `env:"TTL" envDefault:"336h"`
	CookieName   string        `env:"COOKIE_NAME" envDefault:"sessionid"`
	CookieSecure bool          `env:"COOKIE_SECURE" envDefault:"false"`
}
