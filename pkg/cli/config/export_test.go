package config

// NewCareConfigForTest creates a CareConfig pointing at the given file
func NewCareConfigForTest(path string) *CareConfig {
	return &CareConfig{path: path}
}

// NewSlackForTest creates a Slack config for testing purposes
func NewSlackForTest(webhookURL string) *Slack {
	return &Slack{webhookURL: webhookURL}
}
