package i18n

var ptBRCatalog = &Catalog{
	locale: "pt-BR",
	messages: map[Code]string{
		CodeDiceInvalidSpec: "Cada configuração de dado deve conter 6 inteiros não negativos, recebido {{.Spec}}",
		CodeDiceTooFew:      "São necessárias pelo menos {{.Min}} configurações de dados, recebidas {{.Count}}",

		CodeChoiceOutOfRange: "Digite um número válido entre 0 e {{.Max}}.",
		CodeChoiceNotInteger: "Entrada inválida. Digite um número inteiro.",

		CodeCommitmentMismatch: "A chave e o número revelados não correspondem ao compromisso",
		CodeEntropyUnavailable: "A fonte segura de números aleatórios está indisponível",
	},
}
