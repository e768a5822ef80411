// Package desk provides a retained-mode UI toolkit for a raw pixel
// framebuffer with no native windowing system underneath.
//
// Users import this single package for the complete public API: the Control
// tree with its two-pass flexbox-like layout, dirty invalidation and paint
// propagation, spatial-grid hit testing, and the Desktop window manager
// (focus, z-order, drag, taskbar, start menu, cursor compositing).
// Platform access (video mode, vsync, input polling, rasterization) is
// supplied by a Display/Input implementation from a backend package such
// as backend/soft or backend/raylib.
package desk
