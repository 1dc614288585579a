package infra

const FAA_REGISTRY_HOST = "https://registry.faa.gov"

// FaaRegistry holds connection settings for the live FAA aircraft inquiry
// endpoint and the locally extracted releasable dataset.
type FaaRegistry struct {
	host        string
	datasetPath string
	userAgent   string
}

func InitializeFaaRegistry(host, datasetPath, userAgent string) FaaRegistry {
	return FaaRegistry{
		host:        host,
		datasetPath: datasetPath,
		userAgent:   userAgent,
	}
}

func (f FaaRegistry) Host() string {
	if len(f.host) > 0 {
		return f.host
	}
	return FAA_REGISTRY_HOST
}

// DatasetPath points at the FAA releasable database MASTER file on local
// disk. Empty means the dataset source is disabled and only the live
// registry is queried.
func (f FaaRegistry) DatasetPath() string {
	return f.datasetPath
}

func (f FaaRegistry) UserAgent() string {
	if len(f.userAgent) > 0 {
		return f.userAgent
	}
	return "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
}
