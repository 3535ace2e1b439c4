package usecase

// Intent names recognized by the dispatcher.
const (
	IntentAddProduct    = "AddProductIntent"
	IntentListProducts  = "ListProductsIntent"
	IntentNextProducts  = "NextProductsIntent"
	IntentRemoveProduct = "RemoveProductIntent"
	IntentClearPantry   = "ClearPantryIntent"
	IntentCheckProduct  = "CheckProductIntent"
	IntentYes           = "AMAZON.YesIntent"
	IntentNo            = "AMAZON.NoIntent"
	IntentStop          = "AMAZON.StopIntent"
	IntentCancel        = "AMAZON.CancelIntent"
	IntentHelp          = "AMAZON.HelpIntent"
)

// Slot keys filled by the voice platform.
const (
	slotProduct  = "producto"
	slotQuantity = "cantidad"
)

// attrOffset is the only session attribute this skill reads or writes.
const attrOffset = "offset"

// User-facing speech (the skill's locale is Spanish).
const (
	speechWelcome = "Bienvenido a tu despensa. Puedes añadir productos, quitarlos, o preguntarme qué tienes. ¿Qué quieres hacer?"
	speechHelp    = "Puedes decir, por ejemplo: añade tres cocacolas, quita dos pepinos, o qué hay en mi despensa."
	speechClarify = "No he entendido el producto. ¿Puedes repetírmelo?"
	speechOK      = "Vale. ¿Qué más quieres hacer?"
	speechGoodbye = "Hasta luego."
	speechApology = "Lo siento, ha ocurrido un problema. Inténtalo de nuevo en un momento."

	speechAdded = "He añadido %d %s a tu despensa."

	speechListEmpty = "Tu despensa está vacía."
	speechListPage  = "En tu despensa tienes: %s."
	speechListMore  = " ¿Quieres oír más? Di: siguiente."
	speechListDone  = " Y eso es todo."

	speechNotFound    = "No he encontrado %s en tu despensa."
	speechRemovedAll  = "He quitado %s de tu despensa."
	speechDecremented = "He quitado %d de %s. Te quedan %d."

	speechCleared = "He vaciado tu despensa."

	speechCheckNone = "No tienes %s en tu despensa."
	speechCheckSome = "Tienes %d de %s."
)
