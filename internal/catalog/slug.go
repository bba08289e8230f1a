package catalog

import (
	"regexp"
	"strings"
)

// DefaultGuideSlug is used for an empty guide name.
const DefaultGuideSlug = "default-guide"

// guideSlugs fixes the document IDs of the well-known guides.
var guideSlugs = map[string]string{
	"CAMBIO DE MONTO CASH (CMC)":     "cambio-de-monto-cash",
	"Cambio de Monto Cash (CMC)":     "cambio-de-monto-cash",
	"VIAJE REALIZADO":                "viaje-realizado",
	"Viaje Realizado":                "viaje-realizado",
	"VIAJE REALIZADO CASH":           "viaje-realizado-cash",
	"Viaje Realizado Cash":           "viaje-realizado-cash",
	"RECÁLCULO":                      "recalculo",
	"RECALCULO":                      "recalculo",
	"Recálculo":                      "recalculo",
	"MOVIMIENTO CERO":                "movimiento-cero",
	"Movimiento Cero":                "movimiento-cero",
	"VIAJE UNO":                      "viaje-uno",
	"VIAJE YUNO":                     "viaje-uno",
	"Viaje Uno":                      "viaje-uno",
	"ABONO CXC DISPUTA MAL LIBERADA": "abono-cxc-disputa-mal-liberada",
	"Abono CxC Disputa Mal Liberada": "abono-cxc-disputa-mal-liberada",
	"ABONO CXC PAGO MÓVIL":           "abono-cxc-pago-movil",
	"ABONO CXC PAGO MOVIL":           "abono-cxc-pago-movil",
	"Abono CxC Pago Móvil":           "abono-cxc-pago-movil",
}

// canonicalNames resolves a fixed slug back to its upper-case guide name.
var canonicalNames = map[string]string{
	"cambio-de-monto-cash":           "CAMBIO DE MONTO CASH (CMC)",
	"viaje-realizado":                "VIAJE REALIZADO",
	"viaje-realizado-cash":           "VIAJE REALIZADO CASH",
	"recalculo":                      "RECÁLCULO",
	"movimiento-cero":                "MOVIMIENTO CERO",
	"viaje-uno":                      "VIAJE YUNO",
	"abono-cxc-disputa-mal-liberada": "ABONO CXC DISPUTA MAL LIBERADA",
	"abono-cxc-pago-movil":           "ABONO CXC PAGO MÓVIL",
}

var accentFolder = strings.NewReplacer(
	"á", "a", "à", "a", "ä", "a", "â", "a",
	"é", "e", "è", "e", "ë", "e", "ê", "e",
	"í", "i", "ì", "i", "ï", "i", "î", "i",
	"ó", "o", "ò", "o", "ö", "o", "ô", "o",
	"ú", "u", "ù", "u", "ü", "u", "û", "u",
	"ñ", "n",
)

var (
	slugSpaces  = regexp.MustCompile(`\s+`)
	slugInvalid = regexp.MustCompile(`[^a-z0-9-]`)
	slugDashes  = regexp.MustCompile(`-{2,}`)
)

// GuideSlug returns the document ID of a guide name: the fixed slug of a
// well-known guide, otherwise an accent-folded kebab-case slug.
func GuideSlug(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return DefaultGuideSlug
	}
	if slug, ok := guideSlugs[name]; ok {
		return slug
	}
	s := slugSpaces.ReplaceAllString(strings.ToLower(name), "-")
	s = accentFolder.Replace(s)
	s = slugInvalid.ReplaceAllString(s, "")
	s = slugDashes.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// GuideName is the inverse of GuideSlug for fixed slugs. Other slugs are
// title-cased word by word.
func GuideName(slug string) string {
	if slug == "" {
		return "Unknown Guide"
	}
	if name, ok := canonicalNames[slug]; ok {
		return name
	}
	words := strings.Split(slug, "-")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
