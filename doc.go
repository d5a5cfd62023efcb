// Package calc implements the expression core of a button calculator.
//
// Keys are typed into an Equation one Item at a time. TryPush only accepts a
// key if the equation stays well-formed, and fills in what the user implied:
// "2(" becomes "2 × (", "+" on an empty display becomes "0 +", and a second
// operator replaces the first. Groups may be left open while typing; Clean
// closes them, along with turning π, e, Ans, % and ! into plain arithmetic,
// and Solve evaluates the result with the usual precedence, where "^" is
// right-associative. Trigonometric functions work in degrees or radians.
//
// Session wraps an Equation with the rest of a calculator's state, and Render
// turns an equation into styled spans for whatever draws the display.
package calc
