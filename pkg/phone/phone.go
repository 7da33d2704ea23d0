// Package phone normaliza teléfonos de emisor y cliente para mostrarlos en la vista previa.
package phone

import (
	"strings"

	"github.com/ttacon/libphonenumber"
)

// DefaultRegion región usada cuando el número no trae prefijo internacional.
const DefaultRegion = "IN"

// regiones por nombre de país tal como lo escribe el usuario en el formulario.
var countryRegions = map[string]string{
	"india":          "IN",
	"united states":  "US",
	"usa":            "US",
	"united kingdom": "GB",
	"uk":             "GB",
	"germany":        "DE",
	"france":         "FR",
	"japan":          "JP",
	"australia":      "AU",
	"canada":         "CA",
}

// RegionForCountry traduce el país libre del formulario a región ISO; vacío si no se reconoce.
func RegionForCountry(country string) string {
	c := strings.ToLower(strings.TrimSpace(country))
	if r, ok := countryRegions[c]; ok {
		return r
	}
	if len(c) == 2 {
		return strings.ToUpper(c)
	}
	return ""
}

// Display devuelve el número en formato internacional si es válido; si no, el texto original.
func Display(raw, country string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	region := RegionForCountry(country)
	if region == "" {
		region = DefaultRegion
	}
	num, err := libphonenumber.Parse(raw, region)
	if err != nil || !libphonenumber.IsValidNumber(num) {
		return raw
	}
	return libphonenumber.Format(num, libphonenumber.INTERNATIONAL)
}
