package classifier

import (
	"errors"
	"fmt"
	"sync"

	ort "github.com/yalue/onnxruntime_go"
)

var errModelClosed = errors.New("model is closed")

const (
	// ImageSize is the model's input edge length after center cropping.
	ImageSize = 224

	numClasses = 9

	DeviceCPU  = "cpu"
	DeviceCUDA = "cuda"
)

// ForwardFunc runs one forward pass on the given device and returns the raw
// class logits.
type ForwardFunc func(input []float32, device string) ([]float32, error)

// Model wraps a loaded classifier and its label list. The forward function
// is injectable so prediction logic can be tested without a real runtime.
type Model struct {
	path    string
	labels  []string
	forward ForwardFunc

	mu       sync.Mutex
	closed   bool
	sessions map[string]*ortSession
}

// New builds a Model around an arbitrary forward function.
func New(labels []string, forward ForwardFunc) *Model {
	return &Model{labels: labels, forward: forward}
}

// Labels returns the model's class labels in output-index order.
func (m *Model) Labels() []string {
	return m.labels
}

// Path returns the file the model was loaded from, if any.
func (m *Model) Path() string {
	return m.path
}

// Close destroys any live inference sessions. destroy blocks until an
// in-flight run on the same session finishes, and a closed model refuses to
// create new sessions, so requests racing a model swap fail cleanly instead
// of running on freed runtime state.
func (m *Model) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	for _, s := range m.sessions {
		s.destroy()
	}
	m.sessions = nil
}

// session returns the inference session for a device, creating it on first
// use.
func (m *Model) session(device string) (*ortSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return nil, errModelClosed
	}
	if m.sessions == nil {
		m.sessions = make(map[string]*ortSession)
	}
	if s, ok := m.sessions[device]; ok {
		return s, nil
	}
	s, err := newOrtSession(m.path, device)
	if err != nil {
		return nil, err
	}
	m.sessions[device] = s
	return s, nil
}

func (m *Model) ortForward(input []float32, device string) ([]float32, error) {
	s, err := m.session(device)
	if err != nil {
		return nil, err
	}
	return s.run(input)
}

// ortSession wraps a DynamicAdvancedSession bound to one compute device.
type ortSession struct {
	session *ort.DynamicAdvancedSession
	mu      sync.Mutex
}

func newOrtSession(modelPath, device string) (*ortSession, error) {
	inputs, outputs, err := ort.GetInputOutputInfo(modelPath)
	if err != nil {
		return nil, fmt.Errorf("failed to get model input/output info: %w", err)
	}
	if len(inputs) == 0 || len(outputs) == 0 {
		return nil, fmt.Errorf("model has no inputs or outputs")
	}

	opts, err := ort.NewSessionOptions()
	if err != nil {
		return nil, fmt.Errorf("failed to create session options: %w", err)
	}
	defer opts.Destroy()

	if device == DeviceCUDA {
		cudaOpts, err := ort.NewCUDAProviderOptions()
		if err != nil {
			return nil, fmt.Errorf("failed to create CUDA provider options: %w", err)
		}
		defer cudaOpts.Destroy()
		if err := opts.AppendExecutionProviderCUDA(cudaOpts); err != nil {
			return nil, fmt.Errorf("failed to enable CUDA execution provider: %w", err)
		}
	}

	session, err := ort.NewDynamicAdvancedSession(
		modelPath,
		[]string{inputs[0].Name},
		[]string{outputs[0].Name},
		opts,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create ONNX Runtime session: %w", err)
	}
	return &ortSession{session: session}, nil
}

func (s *ortSession) run(input []float32) ([]float32, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return nil, errModelClosed
	}

	inTensor, err := ort.NewTensor(ort.NewShape(1, 3, ImageSize, ImageSize), input)
	if err != nil {
		return nil, fmt.Errorf("failed to create input tensor: %w", err)
	}
	defer inTensor.Destroy()

	outTensor, err := ort.NewEmptyTensor[float32](ort.NewShape(1, numClasses))
	if err != nil {
		return nil, fmt.Errorf("failed to create output tensor: %w", err)
	}
	defer outTensor.Destroy()

	if err := s.session.Run([]ort.Value{inTensor}, []ort.Value{outTensor}); err != nil {
		return nil, err
	}

	out := make([]float32, numClasses)
	copy(out, outTensor.GetData())
	return out, nil
}

func (s *ortSession) destroy() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session != nil {
		s.session.Destroy()
		s.session = nil
	}
}
