// Package metrics holds the Prometheus collectors exported by chainmirror components.
package metrics

const namespace = "chainmirror"

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

func orUnknown(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
