package regex

import "regexp"

// PullRequestURL reconoce una referencia de PR dentro de texto libre.
// La búsqueda es por substring, no se anclan los extremos: una URL incrustada
// en prosa ("mirá https://github.com/acme/widgets/pull/42 porfa") también matchea.
var PullRequestURL = regexp.MustCompile(`https?://[^/\s]+/([^/]+)/([^/]+)/pull/(\d+)`)
