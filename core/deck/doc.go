// Package deck defines the canonical presentation outline model (Deck, Page,
// ColorScheme, DesignSystem) and the assembler that converts loosely-typed
// model output into it. Unvalidated external data never flows past Assemble:
// everything downstream operates on the strict shapes defined here.
package deck
