package interview

import "fmt"

// Language selects the language for model-facing instructions and the
// synthetic turns the session generates locally (greeting, error turn).
type Language string

const (
	LangEnglish Language = "en"
	LangFrench  Language = "fr"
)

// ParseLanguage maps a language tag to a supported Language, defaulting
// to English for anything unrecognized.
func ParseLanguage(tag string) Language {
	switch tag {
	case "fr", "fr-FR", "fr-CA":
		return LangFrench
	default:
		return LangEnglish
	}
}

// greetingText returns the synthetic model greeting referencing the
// area under discussion. Generated locally, no service call.
func greetingText(lang Language, areaName string) string {
	switch lang {
	case LangFrench:
		return fmt.Sprintf("Bonjour ! Je vais vous poser quelques questions pour évaluer la maturité de votre organisation en matière de %s. Pour commencer, comment votre équipe aborde-t-elle ce sujet aujourd'hui ?", areaName)
	default:
		return fmt.Sprintf("Hello! I'm going to ask you a few questions to assess your organization's maturity in %s. To start, how does your team approach this today?", areaName)
	}
}

// errorTurnText returns the synthetic model turn appended after a
// failed service call, inviting the user to retry.
func errorTurnText(lang Language) string {
	switch lang {
	case LangFrench:
		return "J'ai rencontré une erreur, réessayons. Pouvez-vous renvoyer votre dernier message ?"
	default:
		return "I encountered an error, let's try again. Could you send your last message again?"
	}
}

// conclusionText renders the display sentence for a conclusion. The
// sentence is derived from the structured value for display only; the
// score is never extracted back out of it.
func conclusionText(lang Language, areaName string, c Conclusion) string {
	switch lang {
	case LangFrench:
		return fmt.Sprintf("D'après notre échange, je situerais %s au niveau %d. %s", areaName, c.Score, c.Reasoning)
	default:
		return fmt.Sprintf("Based on our conversation, I would place %s at level %d. %s", areaName, c.Score, c.Reasoning)
	}
}

// languageName is the language name used in model instructions.
func languageName(lang Language) string {
	switch lang {
	case LangFrench:
		return "French"
	default:
		return "English"
	}
}
