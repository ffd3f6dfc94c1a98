package catalog

var ptBR = map[string]string{
	KeyWelcome:         "Bem-vindo ao Jogo de Dados Generalizado!",
	KeyAvailableDice:   "Dados disponíveis:",
	KeyMenuPrompt:      "Escolha um dado pelo número (ou digite 'help' para probabilidades, 'exit' para sair): ",
	KeyInvalidMenu:     "Escolha inválida. Selecione um dado válido ou digite 'help' ou 'exit'.",
	KeyGoodbye:         "Obrigado por jogar!",
	KeyUserDie:         "Você escolheu o dado: %s",
	KeySystemDie:       "O computador escolheu o dado: %s",
	KeyRollingFor:      "Rolando para %s...",
	KeyChoicePrompt:    "Escolha um número entre 0 e %d: ",
	KeyChoiceResult:    "Seu número: %d, total: %d",
	KeyCommittedNumber: "Número do computador: %d",
	KeySystemKey:       "Chave do computador: %s",
	KeyCounterpartKey:  "Chave do usuário: %s",
	KeyRoundID:         "Rodada arquivada como %s",
	KeyUserRoll:        "Sua rolagem: %d",
	KeySystemRoll:      "Rolagem do computador: %d",
	KeyYou:             "você",
	KeyComputer:        "o computador",
	KeyFinalResult:     "Resultado final:",
	KeyUserWins:        "Você venceu!",
	KeySystemWins:      "O computador venceu!",
	KeyTie:             "Empate!",
	KeyPlayAgain:       "Jogar novamente? (y/n): ",
	KeyTableTitle:      "Tabela de Probabilidades (chance de vitória para cada par de dados):",
	KeyNonTransitive:   "Ciclo não transitivo: %s",
	KeyTransitive:      "Este conjunto não tem ciclo não transitivo.",
	KeySimulatedTitle:  "Tabela Simulada (%d rolagens por par):",
	KeyVerifyOK:        "Rodada %s verificada: compromisso e resultado conferem.",
	KeyVerifyManualOK:  "Compromisso verificado.",
	KeyVerifyFullOK:    "Transcrição verificada: compromisso e resultado conferem.",
	KeyNoRounds:        "Nenhuma rodada arquivada.",
	KeyAuditPass:       "A fonte de entropia parece uniforme.",
	KeyAuditFail:       "A fonte de entropia falhou no teste de uniformidade.",
}
