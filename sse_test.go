package main

import (
	"sync"
	"testing"
	"time"
)

func TestBroadcasterRegisterUnregister(t *testing.T) {
	b := NewBroadcaster()

	c1 := b.Register(feedPuzzles)
	c2 := b.Register(feedPuzzles)
	c3 := b.Register("other")

	if b.ClientCount(feedPuzzles) != 2 {
		t.Fatalf("expected 2 clients for puzzles feed, got %d", b.ClientCount(feedPuzzles))
	}
	if b.ClientCount("other") != 1 {
		t.Fatalf("expected 1 client for other feed, got %d", b.ClientCount("other"))
	}

	b.Unregister(c1)
	if b.ClientCount(feedPuzzles) != 1 {
		t.Fatalf("expected 1 client after unregister, got %d", b.ClientCount(feedPuzzles))
	}

	b.Unregister(c2)
	b.Unregister(c3)
	if b.ClientCount(feedPuzzles) != 0 || b.ClientCount("other") != 0 {
		t.Fatal("expected 0 clients after full unregister")
	}
}

func TestBroadcasterDoubleUnregister(t *testing.T) {
	b := NewBroadcaster()
	c := b.Register(feedPuzzles)
	b.Unregister(c)
	b.Unregister(c) // should not panic
}

func TestBroadcast(t *testing.T) {
	b := NewBroadcaster()

	c1 := b.Register(feedPuzzles)
	c2 := b.Register("other")

	b.Broadcast(feedPuzzles, "hello")

	select {
	case msg := <-c1.ch:
		if msg != "hello" {
			t.Fatalf("expected 'hello', got %q", msg)
		}
	case <-time.After(100 * time.Millisecond):
		t.Fatal("client did not receive message")
	}

	// c2 is on another feed, should not receive.
	select {
	case <-c2.ch:
		t.Fatal("other feed should not receive puzzles message")
	case <-time.After(50 * time.Millisecond):
		// ok
	}

	b.Unregister(c1)
	b.Unregister(c2)
}

func TestBroadcastSkipsFullChannel(t *testing.T) {
	b := NewBroadcaster()
	c := b.Register(feedPuzzles)

	// Fill the channel.
	for range sseChannelBuffer {
		b.Broadcast(feedPuzzles, "fill")
	}

	// This should not block.
	b.Broadcast(feedPuzzles, "overflow")

	b.Unregister(c)
}

func TestBroadcasterConcurrent(t *testing.T) {
	b := NewBroadcaster()
	var wg sync.WaitGroup

	for i := range 50 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			feed := feedPuzzles
			if i%2 == 0 {
				feed = "other"
			}
			c := b.Register(feed)
			b.Broadcast(feed, "msg")
			b.ClientCount(feed)
			b.Unregister(c)
		}(i)
	}
	wg.Wait()

	if b.ClientCount(feedPuzzles) != 0 || b.ClientCount("other") != 0 {
		t.Fatal("expected 0 clients after concurrent test")
	}
}
