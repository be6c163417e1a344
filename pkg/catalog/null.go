package catalog

// NullTranslations is the no-op catalog set used when no catalog could be
// loaded. It exposes the exact lookup surface of Translations so callers
// can hold either behind the Translator interface, and returns every input
// unchanged. Plural lookups apply the pure is-one check, never a
// locale-specific rule.
type NullTranslations struct{}

// NewNullTranslations creates a no-op catalog set.
func NewNullTranslations() *NullTranslations {
	return &NullTranslations{}
}

// Gettext returns msg unchanged.
func (*NullTranslations) Gettext(msg string) string {
	return msg
}

// PGettext returns msg unchanged, ignoring the context.
func (*NullTranslations) PGettext(context, msg string) string {
	return msg
}

// NGettext returns singular when n == 1, plural otherwise.
func (*NullTranslations) NGettext(singular, plural string, n int) string {
	return defaultPlural(singular, plural, n)
}

// NPGettext returns singular when n == 1, plural otherwise, ignoring the
// context.
func (*NullTranslations) NPGettext(context, singular, plural string, n int) string {
	return defaultPlural(singular, plural, n)
}

// DGettext returns msg unchanged, ignoring the domain.
func (*NullTranslations) DGettext(domain, msg string) string {
	return msg
}

// DPGettext returns msg unchanged, ignoring domain and context.
func (*NullTranslations) DPGettext(domain, context, msg string) string {
	return msg
}

// DNGettext returns singular when n == 1, plural otherwise, ignoring the
// domain.
func (*NullTranslations) DNGettext(domain, singular, plural string, n int) string {
	return defaultPlural(singular, plural, n)
}

// DNPGettext returns singular when n == 1, plural otherwise, ignoring
// domain and context.
func (*NullTranslations) DNPGettext(domain, context, singular, plural string, n int) string {
	return defaultPlural(singular, plural, n)
}

// GettextBytes is the byte-sequence twin of Gettext.
func (nt *NullTranslations) GettextBytes(msg string) []byte {
	return []byte(nt.Gettext(msg))
}

// PGettextBytes is the byte-sequence twin of PGettext.
func (nt *NullTranslations) PGettextBytes(context, msg string) []byte {
	return []byte(nt.PGettext(context, msg))
}

// NGettextBytes is the byte-sequence twin of NGettext.
func (nt *NullTranslations) NGettextBytes(singular, plural string, n int) []byte {
	return []byte(nt.NGettext(singular, plural, n))
}

// NPGettextBytes is the byte-sequence twin of NPGettext.
func (nt *NullTranslations) NPGettextBytes(context, singular, plural string, n int) []byte {
	return []byte(nt.NPGettext(context, singular, plural, n))
}

// DGettextBytes is the byte-sequence twin of DGettext.
func (nt *NullTranslations) DGettextBytes(domain, msg string) []byte {
	return []byte(nt.DGettext(domain, msg))
}

// DPGettextBytes is the byte-sequence twin of DPGettext.
func (nt *NullTranslations) DPGettextBytes(domain, context, msg string) []byte {
	return []byte(nt.DPGettext(domain, context, msg))
}

// DNGettextBytes is the byte-sequence twin of DNGettext.
func (nt *NullTranslations) DNGettextBytes(domain, singular, plural string, n int) []byte {
	return []byte(nt.DNGettext(domain, singular, plural, n))
}

// DNPGettextBytes is the byte-sequence twin of DNPGettext.
func (nt *NullTranslations) DNPGettextBytes(domain, context, singular, plural string, n int) []byte {
	return []byte(nt.DNPGettext(domain, context, singular, plural, n))
}
