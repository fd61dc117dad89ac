// Package gen renders a resolved addon plan into a C header.
//
// Generation uses text/template over a fixed layout; only the data varies.
//
// Output layout, in order:
//   - License banner
//   - Include guard and C++ linkage guard
//   - One undef/redefine block per declared macro
//   - Framework includes, then declared includes
//   - The DEFINE_GET_ADDON registration line
//   - One invocation macro and inline wrapper per declared function
//   - Guard close
package gen
