package utils

import "math/rand/v2"

var projectIcons = []string{
	"🚀", "🌱", "🔥", "🎯", "🧭", "🛠️", "📦", "📚", "🧪", "🌊",
	"🏔️", "🎨", "🔭", "🌙", "⚡", "🍀", "🧩", "🎳", "🪐", "🗺️",
}

// RandomIcon picks a display icon for projects created without one.
func RandomIcon() string {
	return projectIcons[rand.IntN(len(projectIcons))]
}
