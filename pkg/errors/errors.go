package errors

import "errors"

// ErrOptimisticLock registro alterado por outra operação entre a leitura e a escrita
var ErrOptimisticLock = errors.New("o registro foi alterado por outra operação, recarregue e tente novamente")
