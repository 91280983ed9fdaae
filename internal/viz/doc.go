// Package viz renders trajectories and live chain animations.
//
// Three surfaces share one source of truth (the recorded trajectory columns
// downstream consumers read): asciigraph terminal charts, gonum/plot PNG
// export, and a bubbletea live view drawing the cart and links on a braille
// canvas.
package viz
