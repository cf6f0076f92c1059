package chatbot

import (
	"testing"
	"time"
)

var testKB = KnowledgeBase{
	Greeting: "Salut ! Je suis **Momo Bot**.",
	Entries: []Entry{
		{
			Keywords: []string{"projet", "portfolio"},
			Response: "Voici mes **projets**.",
			Action:   &Action{Text: "Voir les projets", Section: "projets"},
		},
		{
			Keywords: []string{"contact", "mail"},
			Response: "Ecris-moi !",
			Action:   &Action{Text: "Me contacter", Section: "contact"},
		},
		{
			Keywords: []string{"merci"},
			Response: "Avec plaisir.",
		},
	},
	Defaults: []string{"Hein ?", "Pardon ?"},
}

func TestAnswerMatchesFirstEntry(t *testing.T) {
	bot := New(testKB)

	tests := []struct {
		msg     string
		want    string
		section string
	}{
		{"Tu as un PROJET sympa ?", "Voici mes projets.", "projets"},
		{"mon mail pour le projet", "Voici mes projets.", "projets"}, // first entry wins
		{"  Merci beaucoup  ", "Avec plaisir.", ""},
		{"comment te contacter", "Ecris-moi !", "contact"},
	}
	for _, tt := range tests {
		got := bot.Answer(tt.msg)
		if got.Text != tt.want {
			t.Errorf("Answer(%q) = %q, want %q", tt.msg, got.Text, tt.want)
		}
		section := ""
		if got.Action != nil {
			section = got.Action.Section
		}
		if section != tt.section {
			t.Errorf("Answer(%q) action = %q, want %q", tt.msg, section, tt.section)
		}
	}
}

func TestAnswerFallsBackToDefaults(t *testing.T) {
	bot := New(testKB)
	bot.pick = func(n int) int { return n - 1 }

	got := bot.Answer("quelle heure est-il")
	if got.Text != "Pardon ?" || got.Action != nil {
		t.Errorf("got %+v, want the last default reply", got)
	}
}

func TestStripMarkup(t *testing.T) {
	if got := StripMarkup("**Java** et **Rust**"); got != "Java et Rust" {
		t.Errorf("StripMarkup = %q", got)
	}
	if got := StripMarkup("plain"); got != "plain" {
		t.Errorf("StripMarkup = %q", got)
	}
}

func TestConversationDelaysReplies(t *testing.T) {
	c := NewConversation(New(testKB))
	c.delay = func() time.Duration { return time.Second }
	start := time.Unix(1000, 0)

	c.Open(start)
	if !c.Typing() || len(c.Log) != 0 {
		t.Fatal("greeting should be pending, not logged")
	}
	c.Update(start.Add(600 * time.Millisecond))
	if len(c.Log) != 1 || c.Log[0].Text != "Salut ! Je suis Momo Bot." {
		t.Fatalf("log = %+v", c.Log)
	}

	// reopening does not greet twice
	c.Open(start)
	if c.Typing() {
		t.Error("second Open queued another greeting")
	}

	if c.Send("   ", start) {
		t.Error("blank message accepted")
	}
	if !c.Send("un projet ?", start) {
		t.Fatal("message rejected")
	}
	if c.Update(start.Add(500 * time.Millisecond)) {
		t.Error("reply delivered before its delay")
	}
	if !c.Update(start.Add(time.Second)) {
		t.Fatal("reply not delivered after its delay")
	}

	last := c.Log[len(c.Log)-1]
	if !last.FromBot || last.Action == nil || last.Action.Section != "projets" {
		t.Errorf("last message = %+v", last)
	}
	if len(c.Log) != 3 {
		t.Errorf("log has %d messages, want 3", len(c.Log))
	}
}
