package cmd

type Config struct {
	HTTPPort               string
	DBHost                 string
	DBPort                 string
	DBUser                 string
	DBPassword             string
	DBName                 string
	DBSslMode              string
	DistanceServiceURL     string
	DistanceServiceTimeout string
	KafkaHost              string
	KafkaOrderChangedTopic string
	PlatformAccountID      string
	CommissionPercent      string
	SettlementTrigger      string
	ConfirmationCodeTTL    string
}
