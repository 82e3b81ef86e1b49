package model

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestSetImage(t *testing.T) {
	a := Alert{ID: "1", Text: "x", CreatedAt: time.Now()}
	if a.HasImage() {
		t.Fatal("new alert must not have an image")
	}
	a.SetImage("https://cdn.example.com/alert-board/1.jpg", "alert-board/1.jpg")
	if !a.HasImage() || a.ImageURL == nil {
		t.Fatal("expected image reference after SetImage")
	}
}

func TestImageKeyNotSerialized(t *testing.T) {
	a := Alert{ID: "1", Text: "x", ImageKey: "alert-board/secret.jpg", CreatedAt: time.Now()}
	data, err := json.Marshal(&a)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(data), "secret.jpg") {
		t.Fatalf("image key leaked into JSON: %s", data)
	}
	if !strings.Contains(string(data), `"imageUrl":null`) {
		t.Fatalf("imageUrl must serialize as null when absent: %s", data)
	}
}
