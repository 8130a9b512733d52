package flavor

import "time"

// Categories with their own fallback tables. Game categories reuse the
// domain game identifiers.
const (
	CategorySlots     = "slots"
	CategoryRoulette  = "roulette"
	CategoryDice      = "dice"
	CategoryBlackjack = "blackjack"
	CategoryExchange  = "exchange"
	CategoryDefault   = "default"
)

// Defaults
const (
	DefaultModel          = "gpt-4o-mini"
	DefaultTimeout        = 5 * time.Second
	DefaultLocale         = "pt-BR"
	DefaultCurrencySymbol = "R$"
	DefaultMaxTokens      = 60
)

// Prompt pieces sent to the completion service
const (
	systemPrompt = "Você é o crupiê carismático de um cassino no Discord. " +
		"Responda com uma única frase curta e divertida em português, sem aspas."
	promptFmt   = "Jogo: %s. Resultado: %s. Valor: %s."
	promptExtra = " Detalhes: %s."
	outcomeWon  = "vitória"
	outcomeLost = "derrota"
)

// Log messages
const (
	LogMsgRemoteDisabled = "Flavor remote completion disabled, using fallback templates"
	LogMsgRemoteFailed   = "Flavor remote completion failed, using fallback"
	LogMsgRemoteEmpty    = "Flavor remote completion returned empty text, using fallback"
)

// templateKey selects a fallback list
type templateKey struct {
	category string
	won      bool
}

// fallbackTemplates take the formatted amount as their only verb
var fallbackTemplates = map[templateKey][]string{
	{CategorySlots, true}: {
		"Os rolos giraram a seu favor: %s direto pro bolso!",
		"Que sorte! A máquina cuspiu %s em fichas.",
		"Brilhou na tela: %s para você!",
	},
	{CategorySlots, false}: {
		"Os rolos não colaboraram, lá se foram %s.",
		"A máquina engoliu %s. Tenta de novo?",
		"Quase! Mas %s ficaram com a casa.",
	},
	{CategoryRoulette, true}: {
		"A bolinha parou no lugar certo: %s para você!",
		"A roleta sorriu e pagou %s.",
	},
	{CategoryRoulette, false}: {
		"A bolinha escolheu outro número, %s para a banca.",
		"Girou, girou e levou %s embora.",
	},
	{CategoryDice, true}: {
		"Os dados rolaram bonito: %s no seu nome!",
		"Palpite certeiro! Você leva %s.",
	},
	{CategoryDice, false}: {
		"Os dados não ajudaram, %s perdidos.",
		"Não foi dessa vez, a casa fica com %s.",
	},
	{CategoryBlackjack, true}: {
		"Mão vencedora! O crupiê paga %s.",
		"Vinte e um de respeito: %s para você.",
	},
	{CategoryBlackjack, false}: {
		"O crupiê levou a melhor e recolheu %s.",
		"Estourou! Lá se vão %s.",
	},
	{CategoryExchange, true}: {
		"Fichas trocadas! %s creditados na sua carteira.",
		"Negócio fechado: %s na conta.",
	},
	{CategoryExchange, false}: {
		"A troca não rolou, %s continuam como fichas.",
	},
	{CategoryDefault, true}: {
		"Parabéns! Você ganhou %s.",
	},
	{CategoryDefault, false}: {
		"Que pena, você perdeu %s.",
	},
}
