package bot

import (
	"encoding/json"
	"testing"
)

// The keyboard must serialize to the exact Bot API wire shape: an
// inline_keyboard row whose button carries a web_app object.
func TestStartKeyboard_WireFormat(t *testing.T) {
	raw, err := json.Marshal(startKeyboard("https://gde-dengi.example/app"))
	if err != nil {
		t.Fatalf("marshal keyboard: %v", err)
	}

	want := `{"inline_keyboard":[[{"text":"Открыть приложение 📱","web_app":{"url":"https://gde-dengi.example/app"}}]]}`
	if string(raw) != want {
		t.Errorf("keyboard JSON = %s, want %s", raw, want)
	}
}

func TestStartKeyboard_SingleButton(t *testing.T) {
	kb := startKeyboard("https://example.org")

	if len(kb.InlineKeyboard) != 1 || len(kb.InlineKeyboard[0]) != 1 {
		t.Fatalf("keyboard layout = %d rows, want 1 row with 1 button", len(kb.InlineKeyboard))
	}
	btn := kb.InlineKeyboard[0][0]
	if btn.WebApp == nil || btn.WebApp.URL != "https://example.org" {
		t.Errorf("button web_app = %+v, want url https://example.org", btn.WebApp)
	}
}
