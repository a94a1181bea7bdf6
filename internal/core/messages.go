package core

import "fmt"

// DefaultLocale is used whenever a caller does not configure one.
const DefaultLocale = "en"

// catalog maps locale -> message key -> template. The original deployment
// served a Brazilian back office, so pt-BR ships alongside the default.
var catalog = map[string]map[string]string{
	"en": {
		"error.duplicate":       "%s with the same %s already exists",
		"error.reference":       "%s references a missing %s",
		"error.delete.blocked":  "%s cannot be deleted: dependent %s records exist",
		"error.field.required":  "%s is required",
		"error.field.positive":  "%s must be positive",
		"error.tree.self":       "qualification cannot be moved to itself",
		"error.tree.descendant": "qualification cannot be moved into its own descendant",
		"error.tree.edge":       "qualification is already attached to this parent",
		"error.system":          "operation %s failed for %s",
	},
	"pt-BR": {
		"error.duplicate":       "%s com o mesmo %s já existe",
		"error.reference":       "%s referencia um %s inexistente",
		"error.delete.blocked":  "%s não pode ser excluído: existem registros de %s dependentes",
		"error.field.required":  "%s é obrigatório",
		"error.field.positive":  "%s deve ser positivo",
		"error.tree.self":       "qualificação não pode ser movida para si mesma",
		"error.tree.descendant": "qualificação não pode ser movida para um descendente",
		"error.tree.edge":       "qualificação já está vinculada a este pai",
		"error.system":          "operação %s falhou para %s",
	},
}

// LookupMessage resolves a message key for a locale, falling back to the
// default locale and finally to the bare key. Lookup failures are never
// business-fatal.
func LookupMessage(locale, key string, args ...any) string {
	msgs, ok := catalog[locale]
	if !ok {
		msgs = catalog[DefaultLocale]
	}
	tpl, ok := msgs[key]
	if !ok {
		tpl, ok = catalog[DefaultLocale][key]
		if !ok {
			return key
		}
	}
	if len(args) == 0 {
		return tpl
	}
	return fmt.Sprintf(tpl, args...)
}

// Message resolves a key in the default locale.
func Message(key string, args ...any) string {
	return LookupMessage(DefaultLocale, key, args...)
}
