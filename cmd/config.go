package cmd

// Config carries all process configuration, loaded from the environment.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// AuctionWindowMinutes is the bidding window length for new orders.
	AuctionWindowMinutes int
	// AuctionAutoSelect enables automatic lowest-price selection when a
	// window expires; otherwise the customer chooses manually.
	AuctionAutoSelect bool

	// WebhookURL receives notification events. Empty means log-only delivery.
	WebhookURL string
	// RedisAddr hosts the order summary cache.
	RedisAddr string
}
