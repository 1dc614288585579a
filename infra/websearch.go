package infra

const WEB_SEARCH_API_HOST = "https://api.tavily.com"

// WebSearch holds settings for the auxiliary text-search collaborator. An
// empty api key disables the collaborator entirely; the pipeline degrades
// gracefully without it.
type WebSearch struct {
	host   string
	apiKey string
}

func InitializeWebSearch(host, apiKey string) WebSearch {
	return WebSearch{
		host:   host,
		apiKey: apiKey,
	}
}

func (ws WebSearch) Enabled() bool {
	return len(ws.apiKey) > 0
}

func (ws WebSearch) Host() string {
	if len(ws.host) > 0 {
		return ws.host
	}
	return WEB_SEARCH_API_HOST
}

func (ws WebSearch) ApiKey() string {
	return ws.apiKey
}
