package infra

const OPENCORPORATES_RECONCILE_HOST = "https://opencorporates.com/reconcile"

type OpenCorporates struct {
	host      string
	userAgent string
}

func InitializeOpenCorporates(host, userAgent string) OpenCorporates {
	return OpenCorporates{
		host:      host,
		userAgent: userAgent,
	}
}

func (oc OpenCorporates) Host() string {
	if len(oc.host) > 0 {
		return oc.host
	}
	return OPENCORPORATES_RECONCILE_HOST
}

func (oc OpenCorporates) UserAgent() string {
	if len(oc.userAgent) > 0 {
		return oc.userAgent
	}
	return "tailtrace/1.0"
}
