package cmd

type Config struct {
	HTTPPort      string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBSslMode     string
	SMTPAddr      string
	SMTPFrom      string
	SMTPRecipient string
	SMSGatewayURL string
	SMSAPIKey     string
}
