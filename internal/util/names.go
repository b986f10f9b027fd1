package util

import (
	"fmt"
	"math/rand"
	"time"
)

var random = rand.New(rand.NewSource(time.Now().UnixNano())) // nolint:gosec

var adjectives = []string{
	"Fast", "Slow", "Quick", "Speedy", "Lucky", "Gracious", "Healthy", "Happy", "Funny",
	"Red", "Blue", "Green", "Orange", "Purple", "Fuzzy", "Smiling", "Tall", "Grand",
	"Bold", "Quiet", "Sneaky", "Patient", "Fearless", "Bluffing", "Charging", "Bouncing",
}

var animals = []string{
	"Dog", "Cat", "Mouse", "Alligator", "Crocodile", "Shark", "Hippo", "Giraffe",
	"Antelope", "Lion", "Tiger", "Bear", "Otter", "Dolphin", "Porcupine", "Hedgehog",
	"Snake", "Lizard", "Chipmunk", "Eagle", "Wolf", "Fox", "Armadillo", "Rhino", "Panda",
}

// GetRandomName returns a random name by combining an adjective with an animal
func GetRandomName() string {
	adjectivesIndex := random.Intn(len(adjectives))
	animalsIndex := random.Intn(len(animals))

	return fmt.Sprintf("%s %s", adjectives[adjectivesIndex], animals[animalsIndex])
}
