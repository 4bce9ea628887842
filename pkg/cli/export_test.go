package cli

var RenderMatrix = renderMatrix
