package form

import "testing"

func TestQuizCountBounds(t *testing.T) {
	g := NewGameRoomForm().SetQuizCount(10)

	for _, bad := range []int{4, 21, 0, -3} {
		if got := g.SetQuizCount(bad).Config.QuizCount; got != 10 {
			t.Fatalf("SetQuizCount(%d) changed count to %d", bad, got)
		}
	}
	for n := 5; n <= 20; n++ {
		if got := g.SetQuizCount(n).Config.QuizCount; got != n {
			t.Fatalf("SetQuizCount(%d) stored %d", n, got)
		}
	}
}

func TestGameRoomValidate(t *testing.T) {
	g, ok := NewGameRoomForm().Validate()
	if ok || !g.TopicMissing || !g.DifficultyMissing {
		t.Fatalf("expected both fields flagged, got %+v", g)
	}

	g = g.SetTopic("네트워크")
	if g.TopicMissing {
		t.Fatalf("expected topic flag cleared on selection")
	}
	g, ok = g.SetDifficulty("중").Validate()
	if !ok {
		t.Fatalf("expected valid form")
	}

	req, err := g.Request()
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if req.Subject != "NETWORK" || req.Level != "NORMAL" || req.QuizCount != 5 {
		t.Fatalf("unexpected request: %+v", req)
	}
	if h := g.Handoff(); h.Topic != "네트워크" || h.Difficulty != "중" || h.QuizCount != 5 {
		t.Fatalf("unexpected handoff: %+v", h)
	}
}
