// Package respond turns engine outcomes into user-facing confirmation text.
// Pure templating: exactly one template per (intent, resolved?) pair, so the
// voice layer can speak the result without further formatting decisions.
package respond

import (
	"fmt"

	"smart-trolley-be/pkg/catalog"
	"smart-trolley-be/pkg/engine/intent"
)

// Compose picks the template for a classified command and its resolution.
// entry is nil when the resolver found nothing (or the intent never
// resolves an item); sectionName is only consulted for found items.
func Compose(cmd intent.Command, entry *catalog.Entry, sectionName string) string {
	switch cmd.Action {
	case intent.ActionFindItem:
		if entry == nil {
			return ItemNotFound(cmd.Phrase)
		}
		return ItemFound(entry.Name, sectionName, entry.Aisle)
	case intent.ActionAddItem:
		if entry == nil {
			return ItemNotFound(cmd.Phrase)
		}
		return ItemAdded(entry.Name)
	case intent.ActionCheckout:
		return CheckoutStarted()
	case intent.ActionShowList:
		return ListShown()
	}
	return Fallback()
}

func ItemFound(item, section, aisle string) string {
	return fmt.Sprintf(
		"Great! I found %s for you. It's located in %s, %s. I'm highlighting the path on your map now. Follow the green arrows to get there!",
		item, section, aisle,
	)
}

func ItemNotFound(phrase string) string {
	if phrase == "" {
		return "I couldn't tell which item you meant. Try naming it, like \"find bread\"."
	}
	return fmt.Sprintf("Sorry, I couldn't find %q in this store. Try asking for something else.", phrase)
}

func ItemAdded(name string) string {
	return fmt.Sprintf("%s has been added to your shopping list.", name)
}

func CheckoutStarted() string {
	return "Proceeding to checkout."
}

func ListShown() string {
	return "Here's your shopping list."
}

func Fallback() string {
	return "I'm here to help you shop smarter! Ask me to find specific items, get directions, or help with your shopping list. What would you like to find?"
}
