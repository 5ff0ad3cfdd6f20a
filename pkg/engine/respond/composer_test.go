package respond

import (
	"strings"
	"testing"

	"smart-trolley-be/pkg/catalog"
	"smart-trolley-be/pkg/engine/intent"
)

func TestCompose(t *testing.T) {
	bread := &catalog.Entry{Name: "bread", SectionId: "bakery", Aisle: "Aisle 1"}

	tests := []struct {
		name     string
		cmd      intent.Command
		entry    *catalog.Entry
		section  string
		contains []string
	}{
		{
			name:     "find resolved mentions location",
			cmd:      intent.Command{Action: intent.ActionFindItem, Phrase: "bread"},
			entry:    bread,
			section:  "Bakery",
			contains: []string{"bread", "Bakery", "Aisle 1"},
		},
		{
			name:     "find unresolved",
			cmd:      intent.Command{Action: intent.ActionFindItem, Phrase: "zzz"},
			contains: []string{"couldn't find", "zzz"},
		},
		{
			name:     "add resolved mentions added",
			cmd:      intent.Command{Action: intent.ActionAddItem, Phrase: "milk"},
			entry:    &catalog.Entry{Name: "milk"},
			contains: []string{"milk", "added"},
		},
		{
			name:     "add unresolved",
			cmd:      intent.Command{Action: intent.ActionAddItem, Phrase: "plutonium"},
			contains: []string{"couldn't find", "plutonium"},
		},
		{
			name:     "checkout",
			cmd:      intent.Command{Action: intent.ActionCheckout},
			contains: []string{"checkout"},
		},
		{
			name:     "show list",
			cmd:      intent.Command{Action: intent.ActionShowList},
			contains: []string{"shopping list"},
		},
		{
			name:     "unknown gets generic help",
			cmd:      intent.Command{Action: intent.ActionUnknown, Raw: "blah"},
			contains: []string{"help you shop"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compose(tt.cmd, tt.entry, tt.section)
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("Compose() = %q, missing %q", got, want)
				}
			}
		})
	}
}

func TestComposeIsDeterministic(t *testing.T) {
	cmd := intent.Command{Action: intent.ActionCheckout}
	if Compose(cmd, nil, "") != Compose(cmd, nil, "") {
		t.Error("same inputs must produce the same template")
	}
}
