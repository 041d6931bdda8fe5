// Package scicalc implements a scientific calculator over float64.
//
// Evaluation is a pipeline of three stages: Tokenize scans text into tokens,
// ToPostfix reorders them with the shunting-yard algorithm, and Evaluate runs
// the postfix sequence on an operand stack. EvalString runs all three.
//
// Expressions use + - * / ^ with the usual precedence, where ^ groups right
// to left, so "2^3^2" is 512. A leading minus negates. The constants are pi
// (also π) and e, and the functions are sin, cos, tan, asin, acos, atan, log
// (base 10), ln, sqrt, fact, and root, where "root(n, x)" is the nth root of
// x. Names are not case sensitive. Trigonometric functions use the AngleMode
// passed to each evaluation; nothing is kept between calls, so every function
// in the package is safe for concurrent use.
package scicalc
