package bench

const CloseTol = closeTol
